package grpcapi

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/csaide/riftdb/api/riftpb"
	"github.com/csaide/riftdb/internal/broker"
)

// publishDTO validates a PublishRequest before it reaches the broker,
// producing an InvalidArgument error for an empty topic name rather than
// letting the broker reject it after the request has already been
// decoded.
type publishDTO struct {
	Topic string
	Data  []byte
}

func (d publishDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Topic, validation.Required),
	)
}

func validatePublish(req *riftpb.PublishRequest) error {
	if req.GetMessage() == nil {
		return broker.InvalidArgument("message must not be nil")
	}
	dto := publishDTO{Topic: req.GetMessage().GetTopic(), Data: req.GetMessage().GetData()}
	if err := dto.Validate(); err != nil {
		return broker.InvalidArgument("%v", err)
	}
	return nil
}

type namedResourceDTO struct {
	Name string
}

func (d namedResourceDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.Length(1, 255)),
	)
}

func validateName(name string) error {
	if err := (namedResourceDTO{Name: name}).Validate(); err != nil {
		return broker.InvalidArgument("%v", err)
	}
	return nil
}

type topicScopedDTO struct {
	Topic string
	Name  string
}

func (d topicScopedDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Topic, validation.Required),
		validation.Field(&d.Name, validation.Required, validation.Length(1, 255)),
	)
}

func validateTopicScoped(topic, name string) error {
	if err := (topicScopedDTO{Topic: topic, Name: name}).Validate(); err != nil {
		return broker.InvalidArgument("%v", err)
	}
	return nil
}
