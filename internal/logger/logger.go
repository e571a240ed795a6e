package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// loggers map lưu các logger instances theo tên (app, request, ...)
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	// config chứa cấu hình logging hiện tại
	config *LogConfig
)

// Init khởi tạo hệ thống logging với cấu hình.
// Truyền nil để dùng cấu hình mặc định (đọc LOG_LEVEL từ env).
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	// Tạo thư mục logs nếu chưa tồn tại
	if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	// Đồng bộ mức log cho logger mặc định của logrus (các package gọi logrus trực tiếp)
	logrus.SetLevel(cfg.Level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return nil
}

// getLogger trả về logger theo tên, tạo mới nếu chưa có.
// Mỗi logger ghi vào file <name>.log (rotate bằng lumberjack) và stdout nếu cấu hình.
func getLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if l, ok := loggers[name]; ok {
		return l
	}

	cfg := config
	if cfg == nil {
		cfg = DefaultConfig()
	}

	l := logrus.New()
	l.SetLevel(cfg.Level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, name+".log"),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	if cfg.ToStdout {
		l.SetOutput(io.MultiWriter(os.Stdout, rotator))
	} else {
		l.SetOutput(rotator)
	}

	loggers[name] = l
	return l
}

// GetAppLogger trả về logger chính của ứng dụng (app.log)
func GetAppLogger() *logrus.Logger {
	return getLogger("app")
}

// GetRequestLogger trả về logger cho HTTP request (request.log)
func GetRequestLogger() *logrus.Logger {
	return getLogger("request")
}
