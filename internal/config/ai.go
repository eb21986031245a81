package config

type Model string

const (
	ModelGemini15ProLatest Model = "gemini-1.5-pro-latest"
	ModelGemini15Flash     Model = "gemini-1.5-flash-latest"
	ModelGemini20Flash     Model = "gemini-2.0-flash"
	ModelGemini25Pro       Model = "gemini-2.5-pro"
	ModelGemini25Flash     Model = "gemini-2.5-flash"
)

func SupportedModels() []Model {
	return []Model{
		ModelGemini15ProLatest,
		ModelGemini15Flash,
		ModelGemini20Flash,
		ModelGemini25Pro,
		ModelGemini25Flash,
	}
}

// DefaultModel is the model used when the caller omits --model. The shipped
// workflows have always passed a 1.5 Pro variant, so that is the default.
func DefaultModel() Model {
	return ModelGemini15ProLatest
}
