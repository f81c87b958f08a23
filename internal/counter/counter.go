// Package counter 提供目录遍历与行数统计能力。
// 该层负责路径校验、递归遍历、单文件读取和结果聚合，全程单线程顺序执行。
package counter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"liner/internal/model"
)

// Service 是行数统计服务对象。
type Service struct {
	extension string
}

// NewService 创建统计服务。
// extension 是目标文件后缀（包含点号，如 .rs），匹配时区分大小写。
func NewService(extension string) *Service {
	return &Service{
		extension: extension,
	}
}

// CountPath 统计目录下全部目标后缀文件的总行数。
// 根路径必须是已存在的目录，否则直接返回错误，不进入遍历；
// 进入遍历后任何单文件（或子目录）读取失败只记录到 Errors，不会中断整体统计。
func (s *Service) CountPath(root string) (model.CountResult, error) {
	var result model.CountResult

	trimmedRoot := strings.TrimSpace(root)
	if trimmedRoot == "" {
		return result, errors.New("count path is empty")
	}

	absoluteRoot, err := filepath.Abs(trimmedRoot)
	if err != nil {
		return result, fmt.Errorf("resolve absolute path: %w", err)
	}

	info, err := os.Stat(absoluteRoot)
	if err != nil {
		return result, fmt.Errorf("stat path: %w", err)
	}
	if !info.IsDir() {
		return result, fmt.Errorf("not a directory: %s", absoluteRoot)
	}

	result.ScannedRoot = absoluteRoot
	result.Files = make([]model.FileCount, 0)
	result.Errors = make([]model.ReadError, 0)

	walkErr := filepath.WalkDir(absoluteRoot, func(path string, entry fs.DirEntry, entryErr error) error {
		if entryErr != nil {
			// 子目录或条目不可读时记录诊断并跳过，保持遍历继续。
			result.Errors = append(result.Errors, model.ReadError{
				Path:  s.displayPath(absoluteRoot, path),
				Error: entryErr.Error(),
			})
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			return nil
		}
		if !s.matchesExtension(entry.Name()) {
			return nil
		}

		displayPath := s.displayPath(absoluteRoot, path)
		lines, countErr := countFileLines(path)
		if countErr != nil {
			// 读取失败的文件贡献为零，记录后继续处理下一个文件。
			result.Errors = append(result.Errors, model.ReadError{
				Path:  displayPath,
				Error: countErr.Error(),
			})
			return nil
		}

		result.AddFileCount(model.FileCount{
			Path:  displayPath,
			Lines: lines,
		})
		return nil
	})
	if walkErr != nil {
		return result, fmt.Errorf("walk directory: %w", walkErr)
	}

	// 求和本身与顺序无关，排序只为保证展示和测试的确定性。
	sort.Slice(result.Files, func(i int, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})
	sort.Slice(result.Errors, func(i int, j int) bool {
		return result.Errors[i].Path < result.Errors[j].Path
	})

	return result, nil
}

// matchesExtension 判断文件名是否命中目标后缀。
// 匹配区分大小写，UPPER.RS 不会被 .rs 过滤器命中。
func (s *Service) matchesExtension(name string) bool {
	return filepath.Ext(name) == s.extension
}

// displayPath 把绝对路径转换为相对根目录的展示路径。
func (s *Service) displayPath(root string, path string) string {
	relativePath, err := filepath.Rel(root, path)
	if err != nil {
		relativePath = path
	}
	return filepath.ToSlash(relativePath)
}

// countFileLines 打开单个文件并统计行记录数。
// 打开、读取、关闭任一环节失败都视为该文件统计失败。
func countFileLines(path string) (int64, error) {
	file, openErr := os.Open(path)
	if openErr != nil {
		return 0, openErr
	}

	lines, readErr := countLineRecords(file)
	closeErr := file.Close()

	if readErr != nil {
		return 0, readErr
	}
	if closeErr != nil {
		return 0, closeErr
	}
	return lines, nil
}

// countLineRecords 流式统计一个 reader 中的行记录数。
//
// 行记录语义：
// - 每个以换行符结尾的片段计 1
// - 文件末尾没有换行符的非空片段同样计 1
// - 空文件计 0
// 统计只依赖换行符本身，不解码文本内容，
// 因此无效的 UTF-8 字节序列会被原样跳过，不会导致失败。
func countLineRecords(reader io.Reader) (int64, error) {
	var lines int64

	// 文件可能很大，采用逐行流式读取来控制内存占用。
	bufferedReader := bufio.NewReader(reader)

	for {
		chunk, err := bufferedReader.ReadString('\n')
		// 没有任何剩余字符时说明已经读完。
		if errors.Is(err, io.EOF) && len(chunk) == 0 {
			break
		}
		// 读取失败且不是 EOF 时，直接返回错误。
		if err != nil && !errors.Is(err, io.EOF) {
			return lines, err
		}

		lines++

		// EOF 且本行已被计数，退出主循环。
		if errors.Is(err, io.EOF) {
			break
		}
	}

	return lines, nil
}
