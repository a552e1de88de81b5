package email

import (
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Имена встроенных шаблонов
const (
	TemplateVerification  = "verification"
	TemplatePasswordReset = "password_reset"
)

const verificationTemplate = `<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Подтверждение email</h2>
  <p>Здравствуйте!</p>
  <p>Для подтверждения адреса перейдите по ссылке. Ссылка действует 24 часа.</p>
  <p><a href="{{.Link}}">Подтвердить email</a></p>
  <p>Если вы не регистрировались, просто проигнорируйте это письмо.</p>
</body>
</html>`

const passwordResetTemplate = `<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Сброс пароля</h2>
  <p>Здравствуйте!</p>
  <p>Мы получили запрос на сброс пароля. Ссылка действует 24 часа.</p>
  <p><a href="{{.Link}}">Задать новый пароль</a></p>
  <p>Если вы не запрашивали сброс, проигнорируйте это письмо.</p>
</body>
</html>`

// TemplateManager реализует TemplateRenderer для управления шаблонами email
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager создает менеджер со встроенными шаблонами
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	// Встроенные шаблоны статичны, ошибка парсинга невозможна
	_ = tm.AddTemplate(TemplateVerification, verificationTemplate)
	_ = tm.AddTemplate(TemplatePasswordReset, passwordResetTemplate)

	return tm
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate добавляет шаблон в менеджер
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

// LoadTemplates загружает шаблоны из директории, перекрывая встроенные
func (tm *TemplateManager) LoadTemplates(dirPath string) error {
	return filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		templateName := strings.TrimSuffix(filepath.Base(path), ".html")
		if err := tm.AddTemplate(templateName, string(content)); err != nil {
			return fmt.Errorf("failed to add template %s: %w", templateName, err)
		}

		return nil
	})
}

// TemplateNames возвращает список имен загруженных шаблонов
func (tm *TemplateManager) TemplateNames() []string {
	tm.mutex.RLock()
	defer tm.mutex.RUnlock()

	names := make([]string, 0, len(tm.templates))
	for name := range tm.templates {
		names = append(names, name)
	}

	return names
}
