package global

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// saleIdPattern giới hạn định dạng định danh giao dịch: chữ, số, gạch ngang/dưới.
// Chặn các chuỗi chứa ký tự điều khiển hoặc operator MongoDB ($, .) từ đường dẫn URL.
var saleIdPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("sale_id", validateSaleId)
}

// validateSaleId kiểm tra định dạng sale_id từ request
func validateSaleId(fl validator.FieldLevel) bool {
	return saleIdPattern.MatchString(fl.Field().String())
}
