package middleware

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adotapet/adota-pet-api/internal/httpresp"
)

func multipartBody(t *testing.T, fieldFile bool, filename, mimeType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	require.NoError(t, w.WriteField("name", "Rex"))

	if fieldFile {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="photo"; filename="`+filename+`"`)
		h.Set("Content-Type", mimeType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(payload)
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func uploadEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorHandler(zap.NewNop(), false))
	r.POST("/upload", PhotoUpload(), func(c *gin.Context) {
		up := UploadFrom(c)
		if up == nil {
			httpresp.OK(c, "no photo", nil)
			return
		}
		httpresp.OK(c, "ok", gin.H{
			"name": up.Name,
			"mime": up.MimeType,
			"size": len(up.Data),
		})
	})
	return r
}

func postMultipart(r *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPhotoUploadParsesImagePart(t *testing.T) {
	body, ct := multipartBody(t, true, "rex photo.jpg", "image/jpeg", []byte{0xFF, 0xD8, 0xFF})

	w := postMultipart(uploadEngine(), body, ct)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"rex photo.jpg"`)
	assert.Contains(t, w.Body.String(), `"mime":"image/jpeg"`)
	assert.Contains(t, w.Body.String(), `"size":3`)
}

func TestPhotoUploadIsOptional(t *testing.T) {
	body, ct := multipartBody(t, false, "", "", nil)

	w := postMultipart(uploadEngine(), body, ct)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "no photo")
}

func TestPhotoUploadRejectsUnsupportedType(t *testing.T) {
	body, ct := multipartBody(t, true, "doc.pdf", "application/pdf", []byte("%PDF-1.4"))

	w := postMultipart(uploadEngine(), body, ct)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "jpeg, png or webp")
}

func TestPhotoUploadRejectsOversizedFile(t *testing.T) {
	body, ct := multipartBody(t, true, "huge.png", "image/png", make([]byte, maxUploadSize+1))

	w := postMultipart(uploadEngine(), body, ct)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at most 5MB")
}
