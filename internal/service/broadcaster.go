package service

// Broadcaster interface for WebSocket pushes (avoids import cycle with
// the ws package)
type Broadcaster interface {
	BroadcastToUser(userID string, msgType string, payload interface{})
	DisconnectUser(userID string)
}
