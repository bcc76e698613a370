package handler

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func multipartImageRequest(t *testing.T, field, filename, contentType string, payload []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		`form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create multipart part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("failed to write part: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func TestUploadImageStoresFileAndProbesSize(t *testing.T) {
	api := setupTestAPI(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartImageRequest(t, "image", "photo.png", "image/png", pngBytes(t, 12, 7))
	api.UploadImage(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body %s)", w.Code, w.Body.String())
	}
	var result uploadResult
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &result); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if !strings.HasPrefix(result.URL, api.uploadURL+"/") {
		t.Fatalf("expected url under %s, got %s", api.uploadURL, result.URL)
	}
	if !strings.HasSuffix(result.URL, ".png") {
		t.Fatalf("expected original extension to survive, got %s", result.URL)
	}
	if result.Width != 12 || result.Height != 7 {
		t.Fatalf("expected probed dimensions 12x7, got %dx%d", result.Width, result.Height)
	}
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	api := setupTestAPI(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartImageRequest(t, "image", "notes.txt", "text/plain", []byte("hello"))
	api.UploadImage(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUploadImageRequiresFile(t *testing.T) {
	api := setupTestAPI(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartImageRequest(t, "attachment", "photo.png", "image/png", pngBytes(t, 1, 1))
	api.UploadImage(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when the image field is missing, got %d", w.Code)
	}
}

func TestUploadImageSurvivesUndecodableImage(t *testing.T) {
	api := setupTestAPI(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartImageRequest(t, "image", "broken.png", "image/png", []byte("not a png"))
	api.UploadImage(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected upload to succeed without dimensions, got %d", w.Code)
	}
	var result uploadResult
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &result); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if result.Width != 0 || result.Height != 0 {
		t.Fatalf("expected zero dimensions for undecodable image, got %dx%d", result.Width, result.Height)
	}
}
