package restore

import (
	"context"
	"fmt"
	"sync"

	"github.com/luciopaiva/glacier-retrieve/pkg/provider"
	"github.com/luciopaiva/glacier-retrieve/pkg/types"
)

// fakeProvider is an in-memory StorageProvider for engine tests. Pages
// are served in order with synthetic continuation tokens.
type fakeProvider struct {
	mu sync.Mutex

	pages      []provider.ObjectPage
	listFailAt int // page index that fails; -1 disables

	metadata    map[string]*types.ObjectMetadata
	metadataErr map[string]error

	restoreErr map[string]error
	restored   []string // keys restored, in call order
}

func newFakeProvider(pages ...provider.ObjectPage) *fakeProvider {
	return &fakeProvider{
		pages:       pages,
		listFailAt:  -1,
		metadata:    make(map[string]*types.ObjectMetadata),
		metadataErr: make(map[string]error),
		restoreErr:  make(map[string]error),
	}
}

// pagesOf splits objects into pages of the given size
func pagesOf(objects []types.Object, pageSize int) []provider.ObjectPage {
	var pages []provider.ObjectPage
	for start := 0; start < len(objects); start += pageSize {
		end := start + pageSize
		if end > len(objects) {
			end = len(objects)
		}
		pages = append(pages, provider.ObjectPage{Objects: objects[start:end]})
	}
	if len(pages) == 0 {
		pages = []provider.ObjectPage{{}}
	}
	return pages
}

func (f *fakeProvider) ListBuckets(ctx context.Context) ([]types.Bucket, error) {
	return nil, nil
}

func (f *fakeProvider) ListObjectsPage(ctx context.Context, bucket, token string) (*provider.ObjectPage, error) {
	index := 0
	if token != "" {
		if _, err := fmt.Sscanf(token, "page-%d", &index); err != nil {
			return nil, fmt.Errorf("bad token %q", token)
		}
	}

	if index == f.listFailAt {
		return nil, fmt.Errorf("injected listing failure at page %d", index)
	}
	if index >= len(f.pages) {
		return &provider.ObjectPage{}, nil
	}

	page := provider.ObjectPage{Objects: f.pages[index].Objects}
	if index < len(f.pages)-1 {
		page.NextToken = fmt.Sprintf("page-%d", index+1)
	}
	return &page, nil
}

func (f *fakeProvider) GetObjectMetadata(ctx context.Context, bucket, key string) (*types.ObjectMetadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.metadataErr[key]; err != nil {
		return nil, err
	}
	if meta, ok := f.metadata[key]; ok {
		return meta, nil
	}
	return &types.ObjectMetadata{StorageClass: "GLACIER"}, nil
}

func (f *fakeProvider) RequestRestore(ctx context.Context, bucket, key string, req provider.RestoreRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.restoreErr[key]; err != nil {
		return err
	}
	f.restored = append(f.restored, key)
	return nil
}

func (f *fakeProvider) restoredKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.restored...)
}

// archivalObject is a shorthand test object constructor
func archivalObject(key string, size int64) types.Object {
	return types.Object{Key: key, Size: size, Tier: types.TierArchivalDelayed}
}

func standardObject(key string, size int64) types.Object {
	return types.Object{Key: key, Size: size, Tier: types.TierStandard}
}
