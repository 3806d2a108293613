package systems

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

const progressKey = "progress"

// SavedProgress is the best run stored on disk.
type SavedProgress struct {
	HighestLevel int `json:"highestLevel"`
	BestCoins    int `json:"bestCoins"`
}

// ItemStore keeps named blobs. *gdata.Manager implements it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// progressStore is nil until persistence is initialized.
var progressStore ItemStore

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return err
	}
	SetProgressStore(m)
	return nil
}

// SetProgressStore replaces the progress store; nil disables persistence.
func SetProgressStore(store ItemStore) {
	progressStore = store
}

// LoadProgress returns the stored progress, or nil when there is none.
func LoadProgress() (*SavedProgress, error) {
	if progressStore == nil {
		return nil, nil
	}

	data, err := progressStore.LoadItem(progressKey)
	if err != nil {
		log.Warn("could not load progress", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Warn("could not parse saved progress", "err", err)
		return nil, err
	}
	return &progress, nil
}

// SaveProgress writes p to disk.
func SaveProgress(p SavedProgress) error {
	if progressStore == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Warn("could not serialize progress", "err", err)
		return err
	}
	if err := progressStore.SaveItem(progressKey, data); err != nil {
		log.Warn("could not save progress", "err", err)
		return err
	}
	return nil
}

// MergeProgress keeps the best of saved and the current run.
func MergeProgress(saved *SavedProgress, level, coins int) SavedProgress {
	var p SavedProgress
	if saved != nil {
		p = *saved
	}
	p.HighestLevel = max(p.HighestLevel, level)
	p.BestCoins = max(p.BestCoins, coins)
	return p
}

// RecordProgress saves the session's level and coins if they beat the stored best.
func RecordProgress(w donburi.World) {
	if progressStore == nil {
		return
	}
	session, ok := sessionData(w)
	if !ok {
		return
	}
	saved, _ := LoadProgress()
	merged := MergeProgress(saved, session.Level, session.Coins)
	if saved != nil && *saved == merged {
		return
	}
	_ = SaveProgress(merged)
}
