package tiptapify

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// Logger 全局日志记录器
var Logger hclog.Logger = hclog.New(&hclog.LoggerOptions{
	Name:   "tiptapify",
	Level:  hclog.Warn,
	Output: os.Stderr,
})

// SetLogger 设置自定义日志记录器
func SetLogger(logger hclog.Logger) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	Logger = logger
}
