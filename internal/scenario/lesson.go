package scenario

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/astro"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/config"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/sim"
)

// Lesson is a scripted sequence of demonstrations, usually walking a
// class from gentle tides to full spaghettification.
type Lesson struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Steps       []LessonStep `yaml:"steps"`
}

// LessonStep is either a preset reference ("blackhole/plunge") or an
// inline config; unset inline fields fall back to the defaults.
type LessonStep struct {
	Title  string        `yaml:"title"`
	Preset string        `yaml:"preset"`
	Config config.Config `yaml:"config"`
}

// StepResult pairs a finished step with what it ran against.
type StepResult struct {
	Title  string
	Object astro.Object
	Result *sim.Result
}

// LoadLesson reads a lesson file.
func LoadLesson(path string) (*Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lesson Lesson
	if err := yaml.Unmarshal(data, &lesson); err != nil {
		return nil, err
	}

	return &lesson, nil
}

func (s *LessonStep) resolve() (*config.Config, error) {
	if s.Preset != "" {
		object, name, ok := strings.Cut(s.Preset, "/")
		if !ok {
			return nil, fmt.Errorf("preset %q: want object/name", s.Preset)
		}
		cfg := config.GetPreset(object, name)
		if cfg == nil {
			return nil, fmt.Errorf("preset %q not found", s.Preset)
		}
		return cfg, nil
	}

	cfg := s.Config
	cfg.ApplyDefaults()
	return &cfg, nil
}

// RunLesson executes every step in order and collects the results.
// The first failing step aborts the lesson.
func RunLesson(ctx context.Context, lesson *Lesson) ([]StepResult, error) {
	results := make([]StepResult, 0, len(lesson.Steps))

	for i, step := range lesson.Steps {
		cfg, err := step.resolve()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		s, err := Build(cfg)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		result, err := s.Run(ctx, RunConfig(cfg))
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		title := step.Title
		if title == "" {
			title = fmt.Sprintf("step %d", i+1)
		}

		results = append(results, StepResult{
			Title:  title,
			Object: s.Object(),
			Result: result,
		})
	}

	return results, nil
}
