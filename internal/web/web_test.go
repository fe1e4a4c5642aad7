package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryPageRenders(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	pages := []string{
		"home.html", "index.html",
		"student.html", "teacher.html",
		"student_new.html", "teacher_new.html",
		"teacher_achievements.html", "submit_achievements.html",
		"student_dashboard.html", "student_achievements.html",
		"teacher_dashboard.html", "all_achievements.html",
	}
	for _, page := range pages {
		t.Run(page, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tmpl.ExecuteTemplate(&buf, page, map[string]interface{}{}))
			assert.Contains(t, buf.String(), "</html>")
		})
	}
}

func TestFlashEscapesMessages(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "submit_achievements.html", map[string]interface{}{
		"success": "Achievement of <b>Asha</b> has been successfully registered!!",
	}))
	assert.Contains(t, buf.String(), "Achievement of &lt;b&gt;Asha&lt;/b&gt; has been successfully registered!!")
}
