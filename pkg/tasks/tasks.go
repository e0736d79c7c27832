// Package tasks defines the structure for tasks that are sent to Kafka.
package tasks

// 媒体索引任务动作
const (
	ActionIndex  = "index"
	ActionDelete = "delete"
)

// MediaIndexTask represents the data structure for a media indexing job.
type MediaIndexTask struct {
	ContentID string `json:"content_id"`
	Action    string `json:"action"`
}
