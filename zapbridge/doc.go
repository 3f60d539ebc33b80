// Package zapbridge lets code written against go.uber.org/zap log through a
// console logger.
//
// Entries are filtered by the logger's shared level, zap logger names become
// scopes and fields are rendered as one structured object:
//
//	z := zapbridge.New(logger.Default())
//	z.Named("db").Info("connected", zap.String("host", "localhost"), zap.Int("port", 5432))
package zapbridge
