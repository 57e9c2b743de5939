package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"

	"github.com/moimlab/survey-api/internal/domain"
)

// Err is the JSON error envelope. Fields carries the complete set of
// validation violations, ExistingResponse the record owning a contested
// nickname.
type Err struct {
	StatusCode int `json:"-"`

	Message          string                 `json:"message"`
	Fields           map[string]string      `json:"errors,omitempty"`
	ExistingResponse *domain.SurveyResponse `json:"existingResponse,omitempty"`
}

func (e *Err) Error() string {
	return e.Message
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("server error",
			zap.Int("status", err.StatusCode),
			zap.String("path", ctx.FullPath()),
			zap.String("message", err.Message),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Message:    err.Error(),
	}
}

// ErrValidation reports every violated field, not just the first. ozzo's
// validation.Errors is already a field→error map; anything else degrades to
// a plain bad request.
func ErrValidation(err error) *Err {
	fieldErrs, ok := err.(validation.Errors)
	if !ok {
		return ErrBadRequest(err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for field, fieldErr := range fieldErrs {
		fields[field] = fieldErr.Error()
	}

	return &Err{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid data",
		Fields:     fields,
	}
}

// ErrNicknameConflict tells the chooser their avatar is taken, and by whom.
func ErrNicknameConflict(existing domain.SurveyResponse) *Err {
	return &Err{
		StatusCode:       http.StatusConflict,
		Message:          "이미 선택된 캐릭터입니다.",
		ExistingResponse: &existing,
	}
}

func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal server error",
	}
}
