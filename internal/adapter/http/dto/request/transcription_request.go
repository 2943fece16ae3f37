package request

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidAudioDataURI = errors.New("invalid audio data URI")

// TranscriptionRequest carries a self-describing audio payload:
// data:<mime-type>;base64,<payload>.
type TranscriptionRequest struct {
	AudioDataURI string `json:"audio_data_uri" binding:"required"`
}

// DecodeAudio splits and decodes the data URI, returning the MIME type and the
// raw audio bytes.
func (r TranscriptionRequest) DecodeAudio() (string, []byte, error) {
	uri := strings.TrimSpace(r.AudioDataURI)
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, ErrInvalidAudioDataURI
	}
	rest := strings.TrimPrefix(uri, "data:")

	head, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", nil, ErrInvalidAudioDataURI
	}
	mimeType, ok := strings.CutSuffix(head, ";base64")
	if !ok || mimeType == "" {
		return "", nil, ErrInvalidAudioDataURI
	}

	audio, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, ErrInvalidAudioDataURI
	}
	if len(audio) == 0 {
		return "", nil, ErrInvalidAudioDataURI
	}
	return mimeType, audio, nil
}
