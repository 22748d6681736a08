// Package viper provides the autograde-wide Viper instance. Using our own
// instance instead of Viper's global keeps flag bindings from leaking between
// commands built in tests.
package viper

import (
	"sync"

	spfviper "github.com/spf13/viper"
)

var (
	instance *spfviper.Viper
	mu       = sync.Mutex{}
)

// Instance provides the instance of Viper, or lazy-loads a new one
// if one has not been defined.
func Instance() *spfviper.Viper {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = spfviper.New()
	}
	return instance
}

// Reset discards the current instance. The next call to Instance returns a
// fresh one.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
}
