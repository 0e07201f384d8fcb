package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.UnixMilli(1700000000000)

func newTestAssetService(store BlobStore, timeout time.Duration) *AssetService {
	svc := NewAssetService(store, "recetas", timeout)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestAssetService_Ingest(t *testing.T) {
	tests := []struct {
		name            string
		encoded         string
		fileName        string
		wantKey         string
		wantContentType string
		wantData        []byte
	}{
		{
			name:            "data url with surplus padding",
			encoded:         "data:image/png;base64,AAAA==",
			fileName:        "r1.png",
			wantKey:         "recetas/1700000000000-r1.png",
			wantContentType: "image/png",
			wantData:        []byte{0, 0, 0},
		},
		{
			name:            "bare payload is sniffed",
			encoded:         "iVBORw0KGgo=",
			fileName:        "r2.png",
			wantKey:         "recetas/1700000000000-r2.png",
			wantContentType: "image/png",
			wantData:        []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'},
		},
		{
			name:            "unpadded payload",
			encoded:         "data:image/jpeg;base64,aGk",
			fileName:        "hi.jpg",
			wantKey:         "recetas/1700000000000-hi.jpg",
			wantContentType: "image/jpeg",
			wantData:        []byte("hi"),
		},
		{
			name:            "directory parts are dropped from the name",
			encoded:         "data:image/png;base64,AAAA",
			fileName:        "../../etc/r3.png",
			wantKey:         "recetas/1700000000000-r3.png",
			wantContentType: "image/png",
			wantData:        []byte{0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			wantURL := "https://cdn.example.com/" + tt.wantKey
			store := NewMockBlobStore(ctrl)
			store.EXPECT().Put(gomock.Any(), tt.wantKey, tt.wantContentType, tt.wantData).Return(wantURL, nil)

			url, err := newTestAssetService(store, time.Second).Ingest(context.Background(), tt.encoded, tt.fileName)

			require.NoError(t, err)
			assert.Equal(t, wantURL, url)
		})
	}
}

func TestAssetService_Ingest_URLCarriesTimestampAndName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const base = "https://res.cloudinary.com/demo/image/upload/"
	store := NewMockBlobStore(ctrl)
	store.EXPECT().Put(gomock.Any(), gomock.Any(), "image/png", gomock.Any()).
		DoAndReturn(func(_ context.Context, key, _ string, _ []byte) (string, error) {
			return base + key, nil
		})

	svc := NewAssetService(store, "recetas", time.Second)
	before := time.Now().UnixMilli()
	url, err := svc.Ingest(context.Background(), "data:image/png;base64,AAAA==", "r1.png")
	after := time.Now().UnixMilli()

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, base+"recetas/"))
	require.True(t, strings.HasSuffix(url, "-r1.png"))

	stamp := strings.TrimSuffix(strings.TrimPrefix(url, base+"recetas/"), "-r1.png")
	millis, err := strconv.ParseInt(stamp, 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, millis, before)
	assert.LessOrEqual(t, millis, after)
}

func TestAssetService_Ingest_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		encoded  string
		fileName string
		wantErr  error
	}{
		{name: "empty payload", encoded: "", fileName: "r1.png", wantErr: apperrors.ErrValidation},
		{name: "blank payload", encoded: "  ", fileName: "r1.png", wantErr: apperrors.ErrValidation},
		{name: "empty file name", encoded: "AAAA", fileName: "", wantErr: apperrors.ErrValidation},
		{name: "marker without payload", encoded: "data:image/png;base64,", fileName: "r1.png", wantErr: apperrors.ErrValidation},
		{name: "marker without comma", encoded: "data:image/png;base64", fileName: "r1.png", wantErr: apperrors.ErrValidation},
		{name: "not base64", encoded: "data:image/png;base64,@@@@", fileName: "r1.png", wantErr: apperrors.ErrDecode},
		{name: "truncated quantum", encoded: "A", fileName: "r1.png", wantErr: apperrors.ErrDecode},
		{name: "root file name", encoded: "AAAA", fileName: "/", wantErr: apperrors.ErrValidation},
		{name: "dot file name", encoded: "AAAA", fileName: ".", wantErr: apperrors.ErrValidation},
		{name: "parent file name", encoded: "AAAA", fileName: "..", wantErr: apperrors.ErrValidation},
		{name: "windows parent file name", encoded: "AAAA", fileName: `..\..\`, wantErr: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no EXPECT: the blob store must not be touched
			store := NewMockBlobStore(ctrl)

			url, err := newTestAssetService(store, time.Second).Ingest(context.Background(), tt.encoded, tt.fileName)

			assert.Empty(t, url)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAssetService_Ingest_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("store rejects write", func(t *testing.T) {
		store := NewMockBlobStore(ctrl)
		store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("403 forbidden"))

		_, err := newTestAssetService(store, time.Second).Ingest(context.Background(), "AAAA", "r1.png")

		assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
	})

	t.Run("store times out", func(t *testing.T) {
		store := NewMockBlobStore(ctrl)
		store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _, _ string, _ []byte) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			})

		_, err := newTestAssetService(store, 10*time.Millisecond).Ingest(context.Background(), "AAAA", "r1.png")

		assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
	})
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "recetas/1700000000000-r1.png", ObjectKey("recetas", fixedNow, "r1.png"))
	assert.Equal(t, "1700000000000-r1.png", ObjectKey("", fixedNow, "r1.png"))
	assert.Equal(t, "img/1700000000000-r1.png", ObjectKey("img", fixedNow, "a/b/r1.png"))
	assert.Equal(t, "img/1700000000000-x.png", ObjectKey("img", fixedNow, `..\..\x.png`))
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "r1.png", want: "r1.png"},
		{name: "nested", in: "a/b/r1.png", want: "r1.png"},
		{name: "traversal", in: "../../etc/r1.png", want: "r1.png"},
		{name: "windows traversal", in: `..\..\x.png`, want: "x.png"},
		{name: "root", in: "/", wantErr: true},
		{name: "dot", in: ".", wantErr: true},
		{name: "parent", in: "..", wantErr: true},
		{name: "windows parent", in: `..\`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := baseName(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
