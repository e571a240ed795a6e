package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Đọc từ file env (config/env/<GO_ENV>.env) rồi override bằng environment variables.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":4000"`                // Địa chỉ server
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"retail_sales"`  // Tên cơ sở dữ liệu
	SalesSchema           string `env:"SALES_SCHEMA" envDefault:"separate"`        // Dạng schema dữ liệu bán hàng: separate | denormalized
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting
	LogLevel              string `env:"LOG_LEVEL" envDefault:"info"`               // Mức log: debug|info|warn|error
}

// Các giá trị hợp lệ cho SalesSchema.
const (
	SchemaSeparate     = "separate"     // Mỗi entity một collection riêng (sales, customers, products, stores)
	SchemaDenormalized = "denormalized" // Tất cả entity trong 1 collection, phân biệt bằng field type
)

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	environment := os.Getenv("GO_ENV")
	if environment == "" {
		environment = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên từ thư mục hiện tại
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", environment))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc dữ liệu cấu hình từ file env và environment variables.
// Trả về nil nếu thiếu file env hoặc thiếu biến bắt buộc.
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		// File env không bắt buộc tồn tại — biến có thể được set trực tiếp từ môi trường
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	if cfg.SalesSchema != SchemaSeparate && cfg.SalesSchema != SchemaDenormalized {
		fmt.Printf("SALES_SCHEMA không hợp lệ (%s), dùng mặc định %s\n", cfg.SalesSchema, SchemaSeparate)
		cfg.SalesSchema = SchemaSeparate
	}

	return &cfg
}
