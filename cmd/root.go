// Package cmd 提供 liner 的命令行入口与命令编排。
package cmd

import (
	"liner/internal/counter"
	"liner/internal/report"

	"github.com/spf13/cobra"
)

// targetExtension 是本工具固定统计的文件后缀。
const targetExtension = ".rs"

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	rootCmd := newRootCmd(version)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册子命令。
// 根命令本身就是完整功能：统计目录下所有 .rs 文件的总行数。
// 示例：
//
//	liner ./project
func newRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "liner [directory]",
		Short: "递归统计目录下 Rust 源码文件总行数",
		Long: "liner 递归遍历指定目录，统计所有 .rs 文件的总行数并输出一个整数。\n" +
			"单个文件读取失败不会中断统计，失败信息会输出到标准错误流。",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := counter.NewService(targetExtension)
			result, err := service.CountPath(args[0])
			if err != nil {
				return err
			}

			if err := report.PrintErrors(cmd.ErrOrStderr(), result); err != nil {
				return err
			}
			return report.PrintTotal(cmd.OutOrStdout(), result)
		},
	}

	rootCmd.AddCommand(newVersionCmd(version))

	return rootCmd
}
