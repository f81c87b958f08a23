// Package model 定义 liner 的核心数据模型。
// 这些结构会被计数器、输出层和命令层共同使用。
package model

// FileCount 表示单文件的行数统计结果。
// Path 是相对扫描根目录的展示路径，统一使用斜杠分隔。
type FileCount struct {
	Path  string
	Lines int64
}

// ReadError 记录单文件读取失败信息。
// 设计为“错误不阻断全量统计”，便于大仓库扫描时容错。
type ReadError struct {
	Path  string
	Error string
}

// CountResult 是一次统计的完整输出模型。
// Total 只累加成功读取的文件，读取失败的文件贡献为零。
type CountResult struct {
	ScannedRoot string
	Files       []FileCount
	Errors      []ReadError
	Total       int64
}

// AddFileCount 把一个文件的统计结果累加到总计中。
func (r *CountResult) AddFileCount(file FileCount) {
	r.Files = append(r.Files, file)
	r.Total += file.Lines
}
