package ufe

import "errors"

// ErrEmptySummary возвращается Cause.Validate для причины без краткого описания.
var ErrEmptySummary = errors.New("ufe: cause summary is empty")

// FileLabel помечает диапазон байт [Start, End) в содержимом файла.
type FileLabel struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Message string `json:"message"`
}

// Line возвращает строку и колонку начала метки в content.
// Обе считаются с единицы, колонка в байтах от начала строки.
// Start за пределами content ограничивается его длиной.
func (l FileLabel) Line(content string) (line, column int) {
	start := l.Start
	if start < 0 {
		start = 0
	}
	if start > len(content) {
		start = len(content)
	}
	line, column = 1, 1
	for i := 0; i < start; i++ {
		if content[i] == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}

// FileHighlight связывает файл с ошибкой и отмечает в нём проблемные места.
type FileHighlight struct {
	Path    string      `json:"path"`
	Content string      `json:"content,omitempty"`
	Labels  []FileLabel `json:"labels,omitempty"`
}

// NewFileHighlight создаёт подсветку файла без меток.
func NewFileHighlight(path, content string) FileHighlight {
	return FileHighlight{Path: path, Content: content}
}

// WithLabel возвращает копию подсветки с добавленной меткой.
func (h FileHighlight) WithLabel(start, end int, message string) FileHighlight {
	labels := make([]FileLabel, 0, len(h.Labels)+1)
	labels = append(labels, h.Labels...)
	h.Labels = append(labels, FileLabel{Start: start, End: end, Message: message})
	return h
}

// Cause — содержимое одного узла дерева объяснений.
//
// Setter-методы принимают значение и возвращают изменённую копию,
// поэтому причина, помещённая в дерево, больше не меняется.
//
//	cause := ufe.NewCause().
//	    WithSummary("Could not read the config").
//	    WithExtendedReason("Check that the file exists.")
type Cause struct {
	// Summary — одна строка, что пошло не так. Обязательна.
	Summary string `json:"summary"`

	// ExtendedReason — развёрнутое пояснение. Пустая строка означает отсутствие.
	ExtendedReason string `json:"extended_reason,omitempty"`

	// FileHighlights — файлы, имеющие отношение к ошибке.
	FileHighlights []FileHighlight `json:"file_highlights,omitempty"`
}

// NewCause возвращает пустую причину. Эквивалентно Cause{}.
func NewCause() Cause {
	return Cause{}
}

// WithSummary возвращает копию с заданным кратким описанием.
func (c Cause) WithSummary(summary string) Cause {
	c.Summary = summary
	return c
}

// WithExtendedReason возвращает копию с заданным пояснением.
func (c Cause) WithExtendedReason(reason string) Cause {
	c.ExtendedReason = reason
	return c
}

// WithFileHighlight возвращает копию с добавленной подсветкой файла.
func (c Cause) WithFileHighlight(h FileHighlight) Cause {
	highlights := make([]FileHighlight, 0, len(c.FileHighlights)+1)
	highlights = append(highlights, c.FileHighlights...)
	c.FileHighlights = append(highlights, h)
	return c
}

// HasExtendedReason сообщает, задано ли пояснение.
func (c Cause) HasExtendedReason() bool {
	return c.ExtendedReason != ""
}

// Validate проверяет, что причина готова к показу пользователю.
func (c Cause) Validate() error {
	if c.Summary == "" {
		return ErrEmptySummary
	}
	return nil
}
