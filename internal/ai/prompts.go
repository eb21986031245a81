package ai

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/thomas-vilte/gemini-review-action/internal/config"
	"github.com/thomas-vilte/gemini-review-action/internal/models"
)

// PromptData holds the parameters for template rendering
type PromptData struct {
	Content string
	Reviews string
}

// RenderPrompt renders a prompt template with the provided data
func RenderPrompt(name, tmplStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("error parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("error executing template %s: %w", name, err)
	}

	return buf.String(), nil
}

const (
	diffReviewPromptEN = `This is a pull request or part of a pull request if the pull request is very large.
Suppose you review this PR as an excellent software engineer and an excellent security engineer.
Can you tell me the issues with differences in a pull request and provide suggestions to improve it?
You can provide a review summary and issue comments per file if any major issues are found.
Always include the name of the file that is citing the improvement or problem.
In the next messages I will be sending you the difference between the GitHub file codes, okay?`

	diffReviewPromptES = `Esto es un pull request o parte de un pull request si el pull request es muy grande.
Supone que revisás este PR como un excelente ingeniero de software y un excelente ingeniero de seguridad.
¿Podés decirme los problemas de las diferencias del pull request y dar sugerencias para mejorarlo?
Podés dar un resumen de la revisión y comentarios por archivo si encontrás problemas importantes.
Incluí siempre el nombre del archivo al que refiere la mejora o el problema.
En los próximos mensajes te voy a mandar las diferencias de los archivos de GitHub, ¿dale?`

	repoReviewPromptEN = `These are the contents of a repository at the commit under review, one file per block, each introduced by its path.
Suppose you review this codebase as an excellent software engineer and an excellent security engineer.
Can you point out the issues in the code and provide suggestions to improve it?
You can provide a review summary and issue comments per file if any major issues are found.
Always include the name of the file that is citing the improvement or problem.
In the next messages I will be sending you the repository files, okay?`

	repoReviewPromptES = `Estos son los contenidos de un repositorio en el commit bajo revisión, un archivo por bloque, cada uno precedido por su ruta.
Supone que revisás este código como un excelente ingeniero de software y un excelente ingeniero de seguridad.
¿Podés marcar los problemas del código y dar sugerencias para mejorarlo?
Podés dar un resumen de la revisión y comentarios por archivo si encontrás problemas importantes.
Incluí siempre el nombre del archivo al que refiere la mejora o el problema.
En los próximos mensajes te voy a mandar los archivos del repositorio, ¿dale?`

	suggestPromptEN = `This is a pull request or part of a pull request if the pull request is very large.
Suppose you are the tech lead reviewing where this change should go next.
Based on the differences, suggest the concrete next steps for this work: follow-up changes, missing tests, risky areas to verify before merging.
Always include the name of the file each suggestion refers to when it applies to a specific file.
In the next messages I will be sending you the difference between the GitHub file codes, okay?`

	suggestPromptES = `Esto es un pull request o parte de un pull request si el pull request es muy grande.
Supone que sos el tech lead revisando cómo debería seguir este cambio.
En base a las diferencias, sugerí los próximos pasos concretos para este trabajo: cambios pendientes, tests que faltan, zonas riesgosas a verificar antes del merge.
Incluí siempre el nombre del archivo al que refiere cada sugerencia cuando aplique a un archivo específico.
En los próximos mensajes te voy a mandar las diferencias de los archivos de GitHub, ¿dale?`

	summarizePromptTemplateEN = `Can you summarize this for me?
It would be good to stick to highlighting pressing issues and providing code suggestions to improve the pull request.
Here's what you need to summarize:

{{.Reviews}}`

	summarizePromptTemplateES = `¿Podés resumirme esto?
Estaría bueno que te concentres en los problemas urgentes y en sugerencias de código para mejorar el pull request.
Esto es lo que tenés que resumir:

{{.Reviews}}`

	noChangesPromptEN = `Say that you didn't find any relevant changes to comment on any file`

	noChangesPromptES = `Decí que no encontraste ningún cambio relevante para comentar en ningún archivo`
)

// GetReviewPromptTemplate returns the chat primer for the requested review
// command. The primer is sent as the first user turn; the content follows in
// a separate message.
func GetReviewPromptTemplate(lang string, cmd models.ReviewCommand) string {
	es := config.GetLocaleConfig(lang) == config.LangES

	switch cmd {
	case models.CommandReviewAll:
		if es {
			return repoReviewPromptES
		}
		return repoReviewPromptEN
	case models.CommandSuggest:
		if es {
			return suggestPromptES
		}
		return suggestPromptEN
	default:
		if es {
			return diffReviewPromptES
		}
		return diffReviewPromptEN
	}
}

// GetSummarizePromptTemplate returns the template that digests the chunk
// reviews; it expects PromptData.Reviews.
func GetSummarizePromptTemplate(lang string) string {
	if config.GetLocaleConfig(lang) == config.LangES {
		return summarizePromptTemplateES
	}
	return summarizePromptTemplateEN
}

// GetNoChangesPrompt returns the fallback instruction used when no content
// chunks were produced; the model still generates the user-facing note.
func GetNoChangesPrompt(lang string) string {
	if config.GetLocaleConfig(lang) == config.LangES {
		return noChangesPromptES
	}
	return noChangesPromptEN
}
