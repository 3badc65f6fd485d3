package assistant

import "PoderBackend/pkg/response"

var (
	ErrUnsupportedLanguage = response.NewError(400, "unsupported language")
	ErrInvalidAudioPath    = response.NewError(400, "invalid audio path")
	ErrAudioNotFound       = response.NewError(404, "audio file not found")
	ErrGenerationFailed    = response.NewError(502, "failed to generate answer")
	ErrSynthesisFailed     = response.NewError(502, "failed to synthesize speech")
	ErrHistoryUnavailable  = response.NewError(500, "failed to load question history")
)
