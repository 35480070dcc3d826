package services

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/iahmedraza4/translation-agent/internal/models"
)

const TranslatorAgentName = "Translator Agent"

// LanguageName returns the English name of tag, e.g. "Spanish" for es.
func LanguageName(tag language.Tag) string {
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return tag.String()
}

// NewTranslatorAgent returns the agent that translates any input into target.
func NewTranslatorAgent(target language.Tag) Agent {
	name := LanguageName(target)
	return Agent{
		Name:         TranslatorAgentName,
		Instructions: fmt.Sprintf("You are a helpful translator. Translate the input text, sentences, words into %s.", name),
	}
}

type Translator struct {
	agent Agent
	run   RunConfig
}

func NewTranslator(agent Agent, run RunConfig) *Translator {
	return &Translator{agent: agent, run: run}
}

// Translate sends text to the agent once. Every failure comes back as a
// Failure result; nothing is returned as a Go error.
func (t *Translator) Translate(ctx context.Context, text string) models.TranslationResult {
	res, err := Run(ctx, t.agent, text, t.run)
	if err != nil {
		log.Printf("translate: %v", err)
		return models.Failure(err)
	}
	return models.Success(res.FinalOutput)
}
