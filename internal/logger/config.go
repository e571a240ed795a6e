package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	Level      logrus.Level // Mức log tối thiểu
	LogDir     string       // Thư mục chứa file log (relative so với root project)
	MaxSizeMB  int          // Kích thước tối đa của 1 file log (MB) trước khi rotate
	MaxBackups int          // Số file backup giữ lại
	MaxAgeDays int          // Số ngày giữ file log cũ
	Compress   bool         // Nén file log cũ
	ToStdout   bool         // Ghi song song ra stdout
}

// DefaultConfig trả về cấu hình logging mặc định.
// Mức log đọc từ env LOG_LEVEL nếu có.
func DefaultConfig() *LogConfig {
	level := logrus.InfoLevel
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if parsed, err := logrus.ParseLevel(s); err == nil {
			level = parsed
		}
	}
	return &LogConfig{
		Level:      level,
		LogDir:     "logs",
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 30,
		Compress:   true,
		ToStdout:   true,
	}
}
