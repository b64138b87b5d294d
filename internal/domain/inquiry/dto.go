// internal/domain/inquiry/dto.go
package inquiry

type CreateInquiryRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Phone   string `json:"phone" binding:"required,max=20"`
	Message string `json:"message" binding:"required"`
}
