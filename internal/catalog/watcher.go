package catalog

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const defaultDebounce = 300 * time.Millisecond

// Watcher перечитывает файл каталога при его изменении.
type Watcher struct {
	path     string
	store    *Store
	watcher  *fsnotify.Watcher
	debounce time.Duration
	log      logrus.FieldLogger
	onReload func(serviceCount int)
}

// NewWatcher подписывается на директорию файла; события других файлов отбрасываются.
func NewWatcher(path string, store *Store, log logrus.FieldLogger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fsw.Close()
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Watcher{
		path:     abs,
		store:    store,
		watcher:  fsw,
		debounce: defaultDebounce,
		log:      log.WithField("component", "catalog-watcher"),
	}, nil
}

// OnReload регистрирует колбэк успешной перезагрузки.
func (w *Watcher) OnReload(fn func(serviceCount int)) {
	w.onReload = fn
}

// Run обрабатывает события до отмены контекста.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("catalog: ошибка наблюдения за файлом")
		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	categories, err := LoadFile(w.path)
	if err != nil {
		// при ошибке остаётся прежний каталог
		w.log.WithError(err).Error("catalog: перезагрузка не удалась")
		return
	}
	w.store.Replace(categories)

	count := 0
	for _, c := range categories {
		count += len(c.Services)
	}
	w.log.WithField("services", count).Info("catalog: каталог перезагружен")
	if w.onReload != nil {
		w.onReload(count)
	}
}
