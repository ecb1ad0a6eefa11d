package services

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"text/template"

	"task-export/internal/domain"
	"task-export/internal/errors"
	"task-export/internal/i18n"
	"task-export/internal/repository/store"
)

const assigneeChangeTemplate = `## {{ md .Title }} (#{{ .ID }})

{{ if .HasAssignee -}}
* **{{ t "Assigned to %s" (md .AssigneeDisplayName) }}**
{{- else -}}
* **{{ t "There is nobody assigned" }}**
{{- end }}
{{ if .Description }}
## {{ t "Description" }}

{{ if blank .Description }}{{ t "There is no description." }}{{ else }}{{ .Description }}{{ end }}
{{ end }}{{ with taskURL .ID }}
---

[{{ t "View task #%d" $.ID }}]({{ . }})
{{ end }}`

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"<", `\<`,
	">", `\>`,
)

// notificationServiceImpl implements the NotificationService interface
type notificationServiceImpl struct {
	repo           store.Repository
	mapper         *domain.Mapper
	translator     *i18n.Translator
	applicationURL string
	tmpl           *template.Template
}

// NewNotificationService creates a NotificationService. applicationURL may
// be empty, in which case no task link is rendered.
func NewNotificationService(repo store.Repository, tr *i18n.Translator, applicationURL string) NotificationService {
	n := &notificationServiceImpl{
		repo:           repo,
		mapper:         domain.NewMapper(),
		translator:     tr,
		applicationURL: strings.TrimSpace(applicationURL),
	}

	n.tmpl = template.Must(template.New("assignee_change").Funcs(template.FuncMap{
		"t":       tr.T,
		"md":      markdownEscaper.Replace,
		"blank":   func(s string) bool { return strings.TrimSpace(s) == "" },
		"taskURL": n.taskURL,
	}).Parse(assigneeChangeTemplate))

	return n
}

func (n *notificationServiceImpl) RenderAssigneeChange(ctx context.Context, taskID int64) (string, error) {
	dbDetail, err := n.repo.GetTaskDetail(ctx, taskID)
	if err != nil {
		return "", err
	}
	return n.Render(n.mapper.TaskDetail.FromDatabase(*dbDetail))
}

func (n *notificationServiceImpl) Render(detail domain.TaskDetail) (string, error) {
	var buf bytes.Buffer
	if err := n.tmpl.Execute(&buf, detail); err != nil {
		return "", errors.WrapError(err, errors.ErrorTypeInvalidInput, fmt.Sprintf("failed to render notification for task %d", detail.ID))
	}
	return buf.String(), nil
}

// taskURL links to the task page of the configured application
func (n *notificationServiceImpl) taskURL(taskID int64) string {
	if n.applicationURL == "" {
		return ""
	}

	u, err := url.Parse(n.applicationURL)
	if err != nil {
		return ""
	}
	q := u.Query()
	q.Set("controller", "task")
	q.Set("action", "show")
	q.Set("task_id", strconv.FormatInt(taskID, 10))
	u.RawQuery = q.Encode()
	return u.String()
}
