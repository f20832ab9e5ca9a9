package meeting

import (
	"sync"
)

var _ blobRemover = &blobRemoverMock{}

type blobRemoverMock struct {
	RemoveFunc func(name string) error

	calls struct {
		Remove []struct {
			Name string
		}
	}
	lockRemove sync.RWMutex
}

func (mock *blobRemoverMock) Remove(name string) error {
	if mock.RemoveFunc == nil {
		panic("blobRemoverMock.RemoveFunc: method is nil but blobRemover.Remove was just called")
	}
	callInfo := struct {
		Name string
	}{Name: name}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(name)
}

func (mock *blobRemoverMock) RemoveCalls() []struct {
	Name string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}
