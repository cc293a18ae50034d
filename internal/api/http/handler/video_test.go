package handler

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/mediatone/mediatone-server/internal/api/http/context"
	"github.com/mediatone/mediatone-server/internal/mocks"
	"github.com/mediatone/mediatone-server/internal/model"
	"github.com/mediatone/mediatone-server/internal/repository/memory"
	"github.com/mediatone/mediatone-server/internal/service"
	"github.com/mediatone/mediatone-server/internal/testutil"
)

type videoFixture struct {
	handler    *Video
	userStore  *memory.UserStore
	videoStore *memory.VideoStore
	storage    *mocks.Storage
	cm         *httpcontext.Manager
}

func newVideoFixture(t *testing.T) *videoFixture {
	t.Helper()
	lg := testutil.MakeNoopLogger()
	userStore := memory.NewUserStore()
	videoStore := memory.NewVideoStore()
	storage := &mocks.Storage{}
	cm := httpcontext.NewManager()

	videoService := service.NewVideo(videoStore, userStore, storage, service.DefaultUploadLimits(), lg)
	return &videoFixture{
		handler:    NewVideo(videoService, cm, lg),
		userStore:  userStore,
		videoStore: videoStore,
		storage:    storage,
		cm:         cm,
	}
}

// multipartUpload builds a multipart body with a "video" file part and
// title/description fields.
func multipartUpload(t *testing.T, title, filename, contentType, data string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="video"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(data))
	require.NoError(t, err)

	if title != "" {
		require.NoError(t, writer.WriteField("title", title))
	}
	require.NoError(t, writer.WriteField("description", "a description"))
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func (f *videoFixture) authedRequest(t *testing.T, method, target string, body *bytes.Buffer, contentType string, identity model.Identity) *http.Request {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", contentType)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(f.cm.SetIdentityToContext(req.Context(), identity))
}

func TestVideo_Upload(t *testing.T) {
	f := newVideoFixture(t)
	owner := seedUser(t, f.userStore, "ada")

	f.storage.On("PublicURL", mock.AnythingOfType("string")).Return("http://store/media/key")
	f.storage.On("Put", mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.AnythingOfType("int64"), "video/mp4").
		Return("http://store/media/key", nil)

	body, contentType := multipartUpload(t, "Sonata", "sonata.mp4", "video/mp4", "fake video bytes")
	req := f.authedRequest(t, http.MethodPost, "/api/videos/upload", body, contentType, owner.Identity())
	rec := httptest.NewRecorder()

	f.handler.Upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)["video"].(map[string]any)
	assert.Equal(t, "Sonata", payload["title"])
	assert.Equal(t, "ready", payload["status"])
	assert.Equal(t, owner.ID.String(), payload["owner_id"])
}

func TestVideo_Upload_MissingTitle(t *testing.T) {
	f := newVideoFixture(t)
	owner := seedUser(t, f.userStore, "ada")

	body, contentType := multipartUpload(t, "", "sonata.mp4", "video/mp4", "bytes")
	req := f.authedRequest(t, http.MethodPost, "/api/videos/upload", body, contentType, owner.Identity())
	rec := httptest.NewRecorder()

	f.handler.Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVideo_Upload_WrongMediaType(t *testing.T) {
	f := newVideoFixture(t)
	owner := seedUser(t, f.userStore, "ada")

	body, contentType := multipartUpload(t, "Doc", "doc.pdf", "application/pdf", "bytes")
	req := f.authedRequest(t, http.MethodPost, "/api/videos/upload", body, contentType, owner.Identity())
	rec := httptest.NewRecorder()

	f.handler.Upload(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestVideo_Upload_StorageFailure(t *testing.T) {
	f := newVideoFixture(t)
	owner := seedUser(t, f.userStore, "ada")

	f.storage.On("PublicURL", mock.AnythingOfType("string")).Return("http://store/media/key")
	f.storage.On("Put", mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.AnythingOfType("int64"), "video/mp4").
		Return("", fmt.Errorf("connection refused"))

	body, contentType := multipartUpload(t, "Sonata", "sonata.mp4", "video/mp4", "bytes")
	req := f.authedRequest(t, http.MethodPost, "/api/videos/upload", body, contentType, owner.Identity())
	rec := httptest.NewRecorder()

	f.handler.Upload(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func seedVideo(t *testing.T, store *memory.VideoStore, ownerID uuid.UUID, title string, status model.VideoStatus) model.Video {
	t.Helper()
	video, err := store.Create(context.Background(), model.CreateVideoParams{
		OwnerID:    ownerID,
		Title:      title,
		StorageKey: "videos/1-" + uuid.NewString() + ".mp4",
		StorageURL: "http://store/media/" + title,
		Status:     status,
	})
	require.NoError(t, err)
	return video
}

func TestVideo_List(t *testing.T) {
	f := newVideoFixture(t)
	owner := seedUser(t, f.userStore, "ada")

	seedVideo(t, f.videoStore, owner.ID, "first", model.VideoStatusReady)
	seedVideo(t, f.videoStore, owner.ID, "second", model.VideoStatusReady)
	seedVideo(t, f.videoStore, owner.ID, "pending", model.VideoStatusUploading)

	rec := httptest.NewRecorder()
	f.handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/videos?page=1&limit=10", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	videos := body["videos"].([]any)
	assert.Len(t, videos, 2)

	page := body["pagination"].(map[string]any)
	assert.Equal(t, float64(1), page["page"])
	assert.Equal(t, float64(10), page["limit"])
	assert.Equal(t, float64(2), page["total"])
}

func TestVideo_List_GarbageQuery(t *testing.T) {
	f := newVideoFixture(t)

	rec := httptest.NewRecorder()
	f.handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/videos?page=abc&limit=-4", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeBody(t, rec)["pagination"].(map[string]any)
	assert.Equal(t, float64(1), page["page"])
	assert.Equal(t, float64(service.DefaultPageSize), page["limit"])
}

func TestVideo_Get_CountsView(t *testing.T) {
	f := newVideoFixture(t)
	owner := seedUser(t, f.userStore, "ada")
	video := seedVideo(t, f.videoStore, owner.ID, "clip", model.VideoStatusReady)

	id := strconv.FormatInt(video.ID, 10)
	for want := 1; want <= 2; want++ {
		req := httptest.NewRequest(http.MethodGet, "/api/videos/"+id, nil)
		req.SetPathValue("id", id)
		rec := httptest.NewRecorder()

		f.handler.Get(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		payload := decodeBody(t, rec)["video"].(map[string]any)
		assert.Equal(t, float64(want), payload["view_count"])
	}
}

func TestVideo_Get_NotFound(t *testing.T) {
	f := newVideoFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/videos/999", nil)
	req.SetPathValue("id", "999")
	rec := httptest.NewRecorder()

	f.handler.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVideo_ListByUser(t *testing.T) {
	f := newVideoFixture(t)
	ada := seedUser(t, f.userStore, "ada")
	bob := seedUser(t, f.userStore, "bob")

	seedVideo(t, f.videoStore, ada.ID, "adas clip", model.VideoStatusReady)
	seedVideo(t, f.videoStore, ada.ID, "adas draft", model.VideoStatusUploading)
	seedVideo(t, f.videoStore, bob.ID, "bobs clip", model.VideoStatusReady)

	req := httptest.NewRequest(http.MethodGet, "/api/videos/user/"+ada.ID.String(), nil)
	req.SetPathValue("userId", ada.ID.String())
	rec := httptest.NewRecorder()

	f.handler.ListByUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	videos := decodeBody(t, rec)["videos"].([]any)
	assert.Len(t, videos, 2)
}

func TestVideo_Delete(t *testing.T) {
	f := newVideoFixture(t)
	owner := seedUser(t, f.userStore, "ada")
	video := seedVideo(t, f.videoStore, owner.ID, "clip", model.VideoStatusReady)

	f.storage.On("Delete", mock.Anything, video.StorageKey).Return(true, nil)

	id := strconv.FormatInt(video.ID, 10)
	req := f.authedRequest(t, http.MethodDelete, "/api/videos/"+id, nil, "", owner.Identity())
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()

	f.handler.Delete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	_, err := f.videoStore.GetByID(context.Background(), video.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

// Deleting someone else's item is forbidden and leaves it in place.
func TestVideo_Delete_NotOwner(t *testing.T) {
	f := newVideoFixture(t)
	ada := seedUser(t, f.userStore, "ada")
	bob := seedUser(t, f.userStore, "bob")
	video := seedVideo(t, f.videoStore, ada.ID, "clip", model.VideoStatusReady)

	id := strconv.FormatInt(video.ID, 10)
	req := f.authedRequest(t, http.MethodDelete, "/api/videos/"+id, nil, "", bob.Identity())
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()

	f.handler.Delete(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	_, err := f.videoStore.GetByID(context.Background(), video.ID)
	assert.NoError(t, err)
	f.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// A storage refusal keeps the record and reports a gateway failure.
func TestVideo_Delete_StorageFailure(t *testing.T) {
	f := newVideoFixture(t)
	owner := seedUser(t, f.userStore, "ada")
	video := seedVideo(t, f.videoStore, owner.ID, "clip", model.VideoStatusReady)

	f.storage.On("Delete", mock.Anything, video.StorageKey).Return(false, fmt.Errorf("timeout"))

	id := strconv.FormatInt(video.ID, 10)
	req := f.authedRequest(t, http.MethodDelete, "/api/videos/"+id, nil, "", owner.Identity())
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()

	f.handler.Delete(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	_, err := f.videoStore.GetByID(context.Background(), video.ID)
	assert.NoError(t, err)
}
