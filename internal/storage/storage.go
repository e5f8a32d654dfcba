// Package storage provides the durable key-value contract the order store
// persists through: string keys, string values, two keys in practice (the
// serialized order list and the ID counter).
package storage

// Keys used by the order store.
const (
	OrdersKey  = "orders"
	CounterKey = "order_counter"
)

// KV is a string-valued key-value store surviving across sessions. Get
// reports ok=false when the key has never been written; errors are reserved
// for backend failures (connection loss, corrupt file, quota).
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}
