package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/estimator"
)

func newTestModel() Model {
	return NewModel(estimator.NewSession(), estimator.DefaultFormatter(), true)
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_StepsSelectedField(t *testing.T) {
	m := press(t, newTestModel(), keyRight)
	assert.Equal(t, 550.0, m.Session().Inputs().AverageJobValue)

	m = press(t, m, keyDown, keyRight, keyRight)
	assert.Equal(t, "calls", m.Selected())
	assert.Equal(t, 7, m.Session().Inputs().MissedCallsPerWeek)

	m = press(t, m, keyDown, keyLeft)
	assert.Equal(t, "rate", m.Selected())
	assert.Equal(t, 25, m.Session().Inputs().CloseRatePercent)
}

func TestModel_SelectionWraps(t *testing.T) {
	m := press(t, newTestModel(), keyUp)
	assert.Equal(t, "rate", m.Selected())

	m = press(t, m, keyDown)
	assert.Equal(t, "job", m.Selected())
}

func TestModel_ClampsAtBounds(t *testing.T) {
	m := newTestModel()
	for i := 0; i < 20; i++ {
		m = press(t, m, keyLeft)
	}
	assert.Equal(t, estimator.JobValueField.Min, m.Session().Inputs().AverageJobValue)
	// 5 calls x 4 x 30% x $100
	assert.Equal(t, "$600", estimator.DefaultFormatter().Format(m.Session().Outputs().MonthlyLoss))

	for i := 0; i < 200; i++ {
		m = press(t, m, keyRight)
	}
	assert.Equal(t, estimator.JobValueField.Max, m.Session().Inputs().AverageJobValue)
}

func TestModel_Reset(t *testing.T) {
	m := press(t, newTestModel(), keyRight, keyDown, keyRight, runeKey('r'))
	assert.Equal(t, estimator.DefaultInputs(), m.Session().Inputs())
}

func TestModel_View(t *testing.T) {
	m := press(t, newTestModel(), keyRight)
	view := m.View()

	assert.Contains(t, view, "Revenue Loss Calculator")
	assert.Contains(t, view, "Average Job Value")
	assert.Contains(t, view, "$550")
	assert.Contains(t, view, "5 calls")
	assert.Contains(t, view, "30%")
	// 5 calls x 4 x 30% x $550
	assert.Contains(t, view, "$3,300")
	assert.Contains(t, view, "$39,600")
	assert.Contains(t, view, "› Average Job Value")
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(k.String(), func(t *testing.T) {
			_, cmd := newTestModel().Update(k)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestModel_ToggleHelp(t *testing.T) {
	m := newTestModel()
	short := m.View()

	m = press(t, m, runeKey('?'))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "reset")
	assert.NotContains(t, short, "reset")
}

func TestSlider(t *testing.T) {
	m := newTestModel()

	assert.Equal(t, sliderWidth, len([]rune(m.slider(estimator.CloseRateField, 10))))
	assert.NotContains(t, m.slider(estimator.CloseRateField, 10), "━")
	assert.NotContains(t, m.slider(estimator.CloseRateField, 100), "─")
}
