package dbmetrics

import "context"

// executorKey ключ контекста для передачи активной транзакции в репозитории
type executorKey struct{}

// WithExecutor кладет транзакционный executor в контекст.
// Репозитории через GetExecutor прозрачно используют транзакцию, если она есть.
func WithExecutor(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, executorKey{}, tx)
}

// GetExecutor возвращает executor из контекста или fallback, если транзакции нет
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(executorKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorKey{}).(TxExecutor)
	return ok
}
