// Package testutil provides fakes for exercising the interactive
// refinement protocol in tests.
package testutil

import "sync"

// ScriptedPrompter answers prompts from pre-queued responses. When a
// queue runs dry it returns the prompt's default (zero index for
// selects, the provided default for confirms and inputs), so tests only
// script the answers they care about. Every question asked is recorded.
type ScriptedPrompter struct {
	mu       sync.Mutex
	selects  []int
	confirms []bool
	inputs   []string

	Questions []string
}

// NewScriptedPrompter creates an empty prompter that answers everything
// with defaults.
func NewScriptedPrompter() *ScriptedPrompter {
	return &ScriptedPrompter{}
}

// QueueSelect enqueues answers for upcoming Select calls.
func (p *ScriptedPrompter) QueueSelect(indices ...int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selects = append(p.selects, indices...)
}

// QueueConfirm enqueues answers for upcoming Confirm calls.
func (p *ScriptedPrompter) QueueConfirm(answers ...bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.confirms = append(p.confirms, answers...)
}

// QueueInput enqueues answers for upcoming Input calls.
func (p *ScriptedPrompter) QueueInput(answers ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inputs = append(p.inputs, answers...)
}

func (p *ScriptedPrompter) Select(question string, options []string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Questions = append(p.Questions, question)
	if len(p.selects) == 0 {
		return 0, nil
	}
	answer := p.selects[0]
	p.selects = p.selects[1:]
	return answer, nil
}

func (p *ScriptedPrompter) Confirm(question string, def bool) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Questions = append(p.Questions, question)
	if len(p.confirms) == 0 {
		return def, nil
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func (p *ScriptedPrompter) Input(question, def string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Questions = append(p.Questions, question)
	if len(p.inputs) == 0 {
		return def, nil
	}
	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	return answer, nil
}

// Asked returns how many questions were asked.
func (p *ScriptedPrompter) Asked() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Questions)
}
