// Package report 提供 liner 的输出能力。
// 成功路径在标准输出写一行十进制总行数，读取失败信息逐行写入错误流。
package report

import (
	"fmt"
	"io"

	"liner/internal/model"
)

// PrintTotal 把总行数作为单独一行写入 writer。
func PrintTotal(writer io.Writer, result model.CountResult) error {
	if _, err := fmt.Fprintf(writer, "%d\n", result.Total); err != nil {
		return fmt.Errorf("write total: %w", err)
	}
	return nil
}

// PrintErrors 为每个读取失败的文件输出一行诊断信息。
// 没有失败记录时不产生任何输出。
func PrintErrors(writer io.Writer, result model.CountResult) error {
	for _, item := range result.Errors {
		if _, err := fmt.Fprintf(writer, "cannot read %s: %s\n", item.Path, item.Error); err != nil {
			return fmt.Errorf("write diagnostic line: %w", err)
		}
	}
	return nil
}
