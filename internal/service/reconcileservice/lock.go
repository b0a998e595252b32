package reconcileservice

import "sync"

// keyedMutex serializes reconciliation per student. Two concurrent
// payments against the same account must both land; different students
// never contend.
type keyedMutex struct {
	locks sync.Map
}

func (k *keyedMutex) lock(key int) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
