package organization

type CreatedEvent struct {
	Result Organization
}

type UpdatedEvent struct {
	Data   Organization
	Result Organization
}

type DeletedEvent struct {
	Result Organization
}
