package cloud

import (
	"fmt"
	"sync"

	"github.com/robklaiss/foteam/internal/configs"
	"github.com/robklaiss/foteam/internal/logger"
	"github.com/t3rm1n4l/go-mega"
	"go.uber.org/zap"
)

const UploadFile = "Repository-UploadFile"
const FetchFile = "Repository-FetchFile"

type megaStore interface {
	Upload(srcpath string, parent *mega.Node, name string) (*mega.Node, error)
	Link(node *mega.Node) (string, error)
	Download(node *mega.Node, dstpath string) error
	FindByName(parent *mega.Node, name string) (*mega.Node, error)
	FindByHash(parent *mega.Node, hash string) (*mega.Node, error)
}
type CloudObject struct {
	connect    megaStore
	mainfolder *mega.Node
	locks      *nameLocks
	logger     logger.PhotoLoggerInterface
}

func NewMegaConnection(config configs.MegaConfig, log logger.PhotoLoggerInterface) (*CloudObject, error) {
	client := mega.New()
	err := client.Login(config.Email, config.Password)
	if err != nil {
		log.Error("Failed to establish Mega-Client connection", zap.Error(err))
		return nil, err
	}
	store := &megaClient{client: client}
	targetFolder, err := store.FindByName(client.FS.GetRoot(), config.MainDirectory)
	if err != nil {
		log.Error("Failed to get the main directory", zap.Error(err))
		return nil, err
	}
	if targetFolder == nil {
		err = fmt.Errorf("main directory %q was not found", config.MainDirectory)
		log.Error("Failed to get the main directory", zap.Error(err))
		return nil, err
	}
	log.Info("Successful connect to Mega-Client", zap.String("directory", config.MainDirectory))
	return newCloudObject(store, targetFolder, log), nil
}
func newCloudObject(store megaStore, folder *mega.Node, log logger.PhotoLoggerInterface) *CloudObject {
	return &CloudObject{
		connect:    store,
		mainfolder: folder,
		locks:      &nameLocks{locks: map[string]*nameLock{}},
		logger:     log,
	}
}

// megaClient adapts go-mega to megaStore. Lookups read the filesystem tree the
// client keeps in memory after login.
type megaClient struct {
	client *mega.Mega
}

func (m *megaClient) Upload(srcpath string, parent *mega.Node, name string) (*mega.Node, error) {
	return m.client.UploadFile(srcpath, parent, name, nil)
}
func (m *megaClient) Link(node *mega.Node) (string, error) {
	return m.client.Link(node, true)
}
func (m *megaClient) Download(node *mega.Node, dstpath string) error {
	return m.client.DownloadFile(node, dstpath, nil)
}
func (m *megaClient) FindByName(parent *mega.Node, name string) (*mega.Node, error) {
	return m.find(parent, func(n *mega.Node) bool { return n.GetName() == name })
}
func (m *megaClient) FindByHash(parent *mega.Node, hash string) (*mega.Node, error) {
	return m.find(parent, func(n *mega.Node) bool { return n.GetHash() == hash })
}
func (m *megaClient) find(parent *mega.Node, match func(*mega.Node) bool) (*mega.Node, error) {
	children, err := m.client.FS.GetChildren(parent)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		if match(child) {
			return child, nil
		}
	}
	return nil, nil
}

// nameLocks serializes work on one blob name; entries live only while held or awaited.
type nameLocks struct {
	mu    sync.Mutex
	locks map[string]*nameLock
}
type nameLock struct {
	sync.Mutex
	refs int
}

func (l *nameLocks) lock(name string) func() {
	l.mu.Lock()
	nl, ok := l.locks[name]
	if !ok {
		nl = &nameLock{}
		l.locks[name] = nl
	}
	nl.refs++
	l.mu.Unlock()
	nl.Lock()
	return func() {
		nl.Unlock()
		l.mu.Lock()
		nl.refs--
		if nl.refs == 0 {
			delete(l.locks, name)
		}
		l.mu.Unlock()
	}
}
func (l *nameLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
