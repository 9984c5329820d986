package observer_mode

import (
	"errors"
	"sync"

	"profile_decorator/decorator_mode"
)

// Push mode

type Subject interface {
	AddObject(obj Object)
	DeleteObject(obj Object)
	NotifyObjects(profile decorator_mode.Profile) error
}

// RealSubject is safe for concurrent use.
type RealSubject struct {
	mu     sync.Mutex
	objArr []Object
}

func (sub *RealSubject) AddObject(obj Object) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	sub.objArr = append(sub.objArr, obj)
}

func (sub *RealSubject) DeleteObject(obj Object) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	kept := sub.objArr[:0]
	for _, v := range sub.objArr {
		if v != obj {
			kept = append(kept, v)
		}
	}
	sub.objArr = kept
}

// NotifyObjects pushes profile to every object. A failing object does not
// stop the others; their errors are joined.
func (sub *RealSubject) NotifyObjects(profile decorator_mode.Profile) error {
	sub.mu.Lock()
	objs := make([]Object, len(sub.objArr))
	copy(objs, sub.objArr)
	sub.mu.Unlock()

	var errs []error
	for _, obj := range objs {
		if err := obj.Update(profile); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
