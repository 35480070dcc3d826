package models

import "errors"

type TranslateRequest struct {
	Text string `json:"text" form:"text" validate:"required"`
}

type TranslateResponse struct {
	Translation string `json:"translation"`
}

// TranslationResult holds either the translated text or the error that
// prevented it. Build one with Success or Failure.
type TranslationResult struct {
	Output string
	Err    error
}

func Success(output string) TranslationResult {
	return TranslationResult{Output: output}
}

func Failure(err error) TranslationResult {
	if err == nil {
		err = errors.New("unknown error")
	}
	return TranslationResult{Err: err}
}

// OK reports whether the result carries a translation.
func (r TranslationResult) OK() bool {
	return r.Err == nil
}

// Display returns the text shown to the user. Failures are prefixed with
// "Error: " so they can never be mistaken for a translation.
func (r TranslationResult) Display() string {
	if r.Err != nil {
		return "Error: " + r.Err.Error()
	}
	return r.Output
}
