package service

// QRCodeService renders share codes for topics.
type QRCodeService interface {
	// GenerateTopicQR renders a PNG QR code linking to the topic.
	GenerateTopicQR(topicID string) ([]byte, error)

	// TopicLink returns the deep link encoded in the topic's QR code.
	TopicLink(topicID string) string

	// ParseTopicLink extracts the topic id from a scanned link.
	ParseTopicLink(link string) (string, error)
}
