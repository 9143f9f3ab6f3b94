package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/response"
)

func attachmentHeader(fileName string) (*httptest.ResponseRecorder, string) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	response.Attachment(c, fileName, "application/pdf", []byte("%PDF"))
	return w, w.Header().Get("Content-Disposition")
}

func TestAttachment_ASCIIName(t *testing.T) {
	w, header := attachmentHeader("Proposta_PROP-20240315-042_Empresa ABC Ltda.pdf")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Proposta_PROP-20240315-042_Empresa ABC Ltda.pdf"`, header)
	assert.NotContains(t, header, "filename*")
}

func TestAttachment_NonASCIIName(t *testing.T) {
	_, header := attachmentHeader("Proposta_PROP-1_Soluções Ltda.pdf")

	assert.Contains(t, header, `filename="Proposta_PROP-1_Solu__es Ltda.pdf"`)
	assert.Contains(t, header, `filename*=UTF-8''Proposta_PROP-1_Solu%C3%A7%C3%B5es%20Ltda.pdf`)
}

func TestAttachment_QuoteInName(t *testing.T) {
	_, header := attachmentHeader(`Proposta_"X".pdf`)

	assert.Contains(t, header, `filename="Proposta__X_.pdf"`)
	assert.Contains(t, header, `filename*=UTF-8''Proposta_%22X%22.pdf`)
}
