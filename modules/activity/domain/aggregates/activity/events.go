package activity

type CreatedEvent struct {
	Result Activity
}

type UpdatedEvent struct {
	Data   Activity
	Result Activity
}

type DeletedEvent struct {
	Result Activity
}
