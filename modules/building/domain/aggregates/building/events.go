package building

type CreatedEvent struct {
	Result Building
}
