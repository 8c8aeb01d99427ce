package config

// Playbook represents a full declarative configuration document: an
// ordered list of tasks applied to one OneView appliance.
type Playbook struct {
	Version     string   `yaml:"version" validate:"required,semver"`
	Name        string   `yaml:"name" validate:"required,min=1,max=100"`
	Description string   `yaml:"description,omitempty"`
	Settings    Settings `yaml:"settings,omitempty"`
	Tasks       []Task   `yaml:"tasks" validate:"required,min=1,dive"`
}

// Settings holds global execution parameters.
type Settings struct {
	ContinueOnError bool `yaml:"continue_on_error,omitempty"`
	DryRun          bool `yaml:"dry_run,omitempty"`
	Verbose         bool `yaml:"verbose,omitempty"`
}

// Task describes one desired-state operation: which module runs it, the
// target state, and the free-form data mapping the module interprets.
type Task struct {
	ID     string         `yaml:"id" validate:"required,task_id"`
	Name   string         `yaml:"name,omitempty"`
	Module string         `yaml:"module" validate:"required"`
	State  string         `yaml:"state" validate:"required"`
	Data   map[string]any `yaml:"data,omitempty"`
}

// DataString returns the named data field as a string, removing it from
// the mapping. Missing or non-string values yield the empty string.
func (t *Task) DataString(key string) string {
	value, ok := t.Data[key]
	if !ok {
		return ""
	}
	delete(t.Data, key)
	s, _ := value.(string)
	return s
}

// DataInt returns the named data field as an int, removing it from the
// mapping. Missing or non-numeric values yield zero.
func (t *Task) DataInt(key string) int {
	value, ok := t.Data[key]
	if !ok {
		return 0
	}
	delete(t.Data, key)
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// DataStringList returns the named data field as a string slice, removing
// it from the mapping. Missing values yield nil.
func (t *Task) DataStringList(key string) []string {
	value, ok := t.Data[key]
	if !ok {
		return nil
	}
	delete(t.Data, key)

	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
