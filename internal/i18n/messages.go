package i18n

var defaultMessagesEN = `
[app_usage]
other = "AI code review for pull requests, powered by Gemini"

[app_description]
other = "Runs inside GitHub Actions: resolves the pull request from the triggering comment, reviews the diff or the whole repository with Gemini and posts the result back as a review comment."

[factory_already_registered]
other = "factory '{{.FactoryName}}' is already registered"

[review.command_usage]
other = "Review the pull request and post the result as a comment"

[review.flag_diff]
other = "Diff to review; fetched from the GitHub API when omitted"

[review.flag_chunk_size]
other = "Maximum characters per chunk sent to the model"

[review.flag_model]
other = "Gemini model name"

[review.flag_extra_prompt]
other = "Extra instructions appended as the model system instruction"

[review.flag_temperature]
other = "Sampling temperature"

[review.flag_max_tokens]
other = "Maximum output tokens per model call"

[review.flag_top_p]
other = "Nucleus sampling probability mass"

[review.flag_frequency_penalty]
other = "Frequency penalty (kept for input compatibility, not sent to Gemini)"

[review.flag_presence_penalty]
other = "Presence penalty (kept for input compatibility, not sent to Gemini)"

[review.flag_log_level]
other = "Log level: DEBUG, INFO, WARN or ERROR"

[review.flag_github_comment]
other = "Body of the comment that triggered the review"

[review.flag_include_extensions]
other = "Comma-separated extensions to keep on whole-repository reviews"

[review.flag_always_include]
other = "Comma-separated files kept regardless of extension"

[review.flag_language]
other = "Language for prompts and messages (en, es)"

[review.starting]
other = "Reviewing pull request #{{.PRNumber}}"

[review.posted]
other = "Review posted to pull request #{{.PRNumber}}"

[review.failed]
other = "Review failed"

[resolve.command_usage]
other = "Resolve the pull request number from the issue_comment event payload"

[resolve.resolved]
other = "Resolved pull request #{{.PRNumber}} from the event payload"

[resolve.not_pull_request]
other = "The comment is not on a pull request, nothing to do"

[version.command_usage]
other = "Print the action version"

[doctor.command_usage]
other = "Check the environment this action needs to run"

[doctor.running_checks]
other = "Running health checks"

[doctor.summary]
other = "Summary"

[doctor.all_good]
other = "Everything looks good"

[doctor.has_warnings]
other = "Some checks reported warnings"

[doctor.has_errors]
other = "Some checks failed"

[doctor.check_review_env]
other = "Review environment variables"

[doctor.check_repository]
other = "Repository name"

[doctor.check_event_payload]
other = "Event payload"

[doctor.check_github_token]
other = "GitHub token"

[doctor.check_gemini_key]
other = "Gemini API key"

[doctor.check_update]
other = "Update check"

[doctor.env_missing]
other = "{{.Var}} is not set"

[doctor.env_ok]
other = "All required variables present"

[doctor.repo_invalid]
other = "GITHUB_REPOSITORY is not in owner/name format"

[doctor.repo_suggestion]
other = "Expected something like: octocat/hello-world"

[doctor.event_not_set]
other = "GITHUB_EVENT_PATH is not set (normal outside a workflow run)"

[doctor.event_not_pr]
other = "Payload parsed, comment is not on a pull request"

[doctor.event_pr]
other = "Payload parsed, pull request #{{.PRNumber}}"

[doctor.token_not_set]
other = "GITHUB_TOKEN is not set"

[doctor.token_suggestion]
other = "Pass secrets.GITHUB_TOKEN to the action"

[doctor.token_invalid]
other = "The token was rejected by the GitHub API"

[doctor.token_ok]
other = "Token accepted by the GitHub API"

[doctor.key_not_set]
other = "GEMINI_API_KEY is not set"

[doctor.key_suggestion]
other = "Set the GEMINI_API_KEY secret in your workflow"

[doctor.key_shape_warning]
other = "The key does not look like a Gemini API key"

[doctor.key_ok]
other = "Key present"

[doctor.update_available]
other = "Version {{.Latest}} is available (running {{.Current}})"

[doctor.up_to_date]
other = "Running the latest version"

[doctor.update_check_failed]
other = "Could not check for updates"

[ui_error.try_suggestion]
other = "💡 Try: "

[ui.token_usage]
other = "Token usage"

[ui.input]
other = "input"

[ui.output]
other = "output"

[ui.total]
other = "total"

[ui.model_calls]
one = "{{.Count}} model call"
other = "{{.Count}} model calls"
`

var defaultMessagesES = `
[app_usage]
other = "Revisión de código con IA para pull requests, con Gemini"

[app_description]
other = "Corre dentro de GitHub Actions: resuelve el pull request desde el comentario que lo dispara, revisa el diff o el repositorio completo con Gemini y publica el resultado como comentario de revisión."

[factory_already_registered]
other = "la factory '{{.FactoryName}}' ya está registrada"

[review.command_usage]
other = "Revisar el pull request y publicar el resultado como comentario"

[review.flag_diff]
other = "Diff a revisar; se obtiene de la API de GitHub si se omite"

[review.flag_chunk_size]
other = "Máximo de caracteres por bloque enviado al modelo"

[review.flag_model]
other = "Nombre del modelo de Gemini"

[review.flag_extra_prompt]
other = "Instrucciones extra que se agregan como instrucción de sistema"

[review.flag_temperature]
other = "Temperatura de muestreo"

[review.flag_max_tokens]
other = "Máximo de tokens de salida por llamada al modelo"

[review.flag_top_p]
other = "Masa de probabilidad del muestreo nucleus"

[review.flag_frequency_penalty]
other = "Penalidad de frecuencia (se acepta por compatibilidad, no se envía a Gemini)"

[review.flag_presence_penalty]
other = "Penalidad de presencia (se acepta por compatibilidad, no se envía a Gemini)"

[review.flag_log_level]
other = "Nivel de log: DEBUG, INFO, WARN o ERROR"

[review.flag_github_comment]
other = "Cuerpo del comentario que disparó la revisión"

[review.flag_include_extensions]
other = "Extensiones separadas por coma a incluir en revisiones de repositorio completo"

[review.flag_always_include]
other = "Archivos separados por coma que se incluyen siempre, sin importar la extensión"

[review.flag_language]
other = "Idioma de los prompts y mensajes (en, es)"

[review.starting]
other = "Revisando el pull request #{{.PRNumber}}"

[review.posted]
other = "Revisión publicada en el pull request #{{.PRNumber}}"

[review.failed]
other = "La revisión falló"

[resolve.command_usage]
other = "Resolver el número de pull request desde el payload del evento issue_comment"

[resolve.resolved]
other = "Pull request #{{.PRNumber}} resuelto desde el payload del evento"

[resolve.not_pull_request]
other = "El comentario no es de un pull request, no hay nada que hacer"

[version.command_usage]
other = "Mostrar la versión de la action"

[doctor.command_usage]
other = "Verificar el entorno que necesita esta action"

[doctor.running_checks]
other = "Corriendo chequeos de salud"

[doctor.summary]
other = "Resumen"

[doctor.all_good]
other = "Todo en orden"

[doctor.has_warnings]
other = "Algunos chequeos tienen advertencias"

[doctor.has_errors]
other = "Algunos chequeos fallaron"

[doctor.check_review_env]
other = "Variables de entorno de la revisión"

[doctor.check_repository]
other = "Nombre del repositorio"

[doctor.check_event_payload]
other = "Payload del evento"

[doctor.check_github_token]
other = "Token de GitHub"

[doctor.check_gemini_key]
other = "API key de Gemini"

[doctor.check_update]
other = "Chequeo de actualización"

[doctor.env_missing]
other = "{{.Var}} no está definida"

[doctor.env_ok]
other = "Todas las variables requeridas están presentes"

[doctor.repo_invalid]
other = "GITHUB_REPOSITORY no tiene el formato owner/name"

[doctor.repo_suggestion]
other = "Se espera algo como: octocat/hello-world"

[doctor.event_not_set]
other = "GITHUB_EVENT_PATH no está definida (normal fuera de un workflow)"

[doctor.event_not_pr]
other = "Payload parseado, el comentario no es de un pull request"

[doctor.event_pr]
other = "Payload parseado, pull request #{{.PRNumber}}"

[doctor.token_not_set]
other = "GITHUB_TOKEN no está definida"

[doctor.token_suggestion]
other = "Pasale secrets.GITHUB_TOKEN a la action"

[doctor.token_invalid]
other = "La API de GitHub rechazó el token"

[doctor.token_ok]
other = "Token aceptado por la API de GitHub"

[doctor.key_not_set]
other = "GEMINI_API_KEY no está definida"

[doctor.key_suggestion]
other = "Configurá el secret GEMINI_API_KEY en tu workflow"

[doctor.key_shape_warning]
other = "La key no parece una API key de Gemini"

[doctor.key_ok]
other = "Key presente"

[doctor.update_available]
other = "Hay una versión {{.Latest}} disponible (estás corriendo {{.Current}})"

[doctor.up_to_date]
other = "Estás corriendo la última versión"

[doctor.update_check_failed]
other = "No se pudo chequear si hay actualizaciones"

[ui_error.try_suggestion]
other = "💡 Probá: "

[ui.token_usage]
other = "Uso de tokens"

[ui.input]
other = "entrada"

[ui.output]
other = "salida"

[ui.total]
other = "total"

[ui.model_calls]
one = "{{.Count}} llamada al modelo"
other = "{{.Count}} llamadas al modelo"
`
