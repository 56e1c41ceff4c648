package orders

// TopicOrderEvents carries every order lifecycle event. A single topic keeps
// OrderPlaced ahead of the status changes of the same order.
const TopicOrderEvents = "order.events"

// Partition key = session_id/order_id. Order ids are only unique inside one
// session, and every event of one order lands on the same partition.
func PartitionKey(sessionID, orderID string) []byte {
	return []byte(sessionID + "/" + orderID)
}
