package qrcode

import (
	"testing"

	"bookclub/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://bookclub.example.com/topics"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(testBaseURL, tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestNew_FromConfig(t *testing.T) {
	cfg := &config.Config{Share: &config.ShareConfig{BaseURL: testBaseURL + "/", Size: 128, ErrorCorrectionLevel: "H"}}

	service := New(cfg)
	assert.Equal(t, testBaseURL+"/abc", service.TopicLink("abc"))
}

func TestQRCodeService_GenerateTopicQR(t *testing.T) {
	service := NewQRCodeService(testBaseURL, 256, "M")

	qrBytes, err := service.GenerateTopicQR(uuid.NewString())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateTopicQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(testBaseURL, size, "M")

		qrBytes, err := service.GenerateTopicQR("topic-1")
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_GenerateTopicQR_EmptyID(t *testing.T) {
	service := NewQRCodeService(testBaseURL, 256, "M")

	_, err := service.GenerateTopicQR("")
	assert.Error(t, err)
}

func TestQRCodeService_ParseTopicLink(t *testing.T) {
	service := NewQRCodeService(testBaseURL, 256, "M")

	tests := []struct {
		name    string
		link    string
		want    string
		wantErr bool
	}{
		{name: "plain", link: testBaseURL + "/abc123", want: "abc123"},
		{name: "query dropped", link: testBaseURL + "/abc123?src=qr", want: "abc123"},
		{name: "escaped", link: testBaseURL + "/a%20b", want: "a b"},
		{name: "foreign host", link: "https://evil.example.com/topics/abc", wantErr: true},
		{name: "nested path", link: testBaseURL + "/abc/posts", wantErr: true},
		{name: "missing id", link: testBaseURL + "/", wantErr: true},
		{name: "bad escape", link: testBaseURL + "/%zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseTopicLink(tt.link)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService(testBaseURL, 256, "M")
	topicID := uuid.NewString()

	parsed, err := service.ParseTopicLink(service.TopicLink(topicID))
	require.NoError(t, err)
	assert.Equal(t, topicID, parsed)
}
