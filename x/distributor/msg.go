package distributor

import (
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
)

const (
	pathCreateMsg     = "distributor/create"
	pathDistributeMsg = "distributor/distribute"
)

// CreateMsg creates a distributor owned by the signer.
type CreateMsg struct {
	Recipients []splitter.Address `json:"recipients"`
}

var _ splitter.Msg = (*CreateMsg)(nil)

func (CreateMsg) Path() string {
	return pathCreateMsg
}

func (m *CreateMsg) Validate() error {
	return validateRecipients(m.Recipients)
}

// DistributeMsg requests the distribution of all funds of a distributor. The
// recipient list must match the one the distributor was created with.
type DistributeMsg struct {
	DistributorID []byte             `json:"distributor_id"`
	Recipients    []splitter.Address `json:"recipients"`
}

var _ splitter.Msg = (*DistributeMsg)(nil)

func (DistributeMsg) Path() string {
	return pathDistributeMsg
}

// Validate checks neither the recipient addresses nor their number. Any
// non empty list not matching the commitment is rejected as an invalid
// recipient group.
func (m *DistributeMsg) Validate() error {
	var errs error
	if len(m.DistributorID) != 8 {
		errs = errors.AppendField(errs, "DistributorID", errors.ErrInput)
	}
	if len(m.Recipients) == 0 {
		errs = errors.AppendField(errs, "Recipients", ErrEmptyRecipients)
	}
	return errs
}
