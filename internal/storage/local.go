package storage

import (
	"errors"
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	prefsObject   = "player"
	prefsProperty = "prefs"
)

// localPrefs is the document kept in the platform data directory.
type localPrefs struct {
	PrevScore int `yaml:"prev_score"`
}

// LocalStore keeps the previous score in the per-user application data
// directory. A nil manager runs in memory only.
type LocalStore struct {
	manager *gdata.Manager
	prefs   localPrefs
}

// OpenLocal opens the data directory for appName.
func OpenLocal(appName string) (*LocalStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open data dir: %w", err)
	}
	return NewLocal(m), nil
}

// NewLocal wraps an existing manager, which may be nil.
func NewLocal(m *gdata.Manager) *LocalStore {
	return &LocalStore{manager: m}
}

// PrevScore returns the stored score, or 0 when nothing is stored.
func (l *LocalStore) PrevScore() (int, error) {
	if l.manager == nil || !l.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return l.prefs.PrevScore, nil
	}

	data, err := l.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load prefs: %w", err)
	}
	var p localPrefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return 0, fmt.Errorf("storage: cannot decode prefs: %w", err)
	}
	l.prefs = p
	return p.PrevScore, nil
}

// SetPrevScore overwrites the stored score.
func (l *LocalStore) SetPrevScore(score int) error {
	l.prefs.PrevScore = score
	if l.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(l.prefs)
	if err != nil {
		return fmt.Errorf("storage: cannot encode prefs: %w", err)
	}
	if err := l.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("storage: cannot save prefs: %w", err)
	}
	return nil
}

// Local combines the per-user previous score with the shared round history
// for play on this machine. Either part may be nil.
type Local struct {
	Prefs      *LocalStore
	History    *Store
	Player     string
	Difficulty string
}

// PrevScore reads the previous score, preferring the data directory.
func (l Local) PrevScore() (int, error) {
	if l.Prefs != nil {
		return l.Prefs.PrevScore()
	}
	if l.History != nil {
		return l.History.PrevScore(l.Player)
	}
	return 0, nil
}

// SetPrevScore writes the previous score and appends the round to the
// history. Both writes are attempted.
func (l Local) SetPrevScore(score int) error {
	var errs []error
	if l.Prefs != nil {
		errs = append(errs, l.Prefs.SetPrevScore(score))
	}
	if l.History != nil {
		errs = append(errs, l.History.FinishRound(l.Player, score, l.Difficulty))
	}
	return errors.Join(errs...)
}
