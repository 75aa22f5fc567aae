package distributor

import (
	"github.com/gogo/protobuf/proto"
)

// Distributor is the persisted state of a single distributor.
type Distributor struct {
	// Owner created the distributor and receives the refund of failed
	// payments.
	Owner []byte `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	// RecipientGroup is the commitment of the ordered recipient list.
	RecipientGroup []byte `protobuf:"bytes,2,opt,name=recipient_group,json=recipientGroup,proto3" json:"recipient_group,omitempty"`
	// Address is the account holding the funds to distribute.
	Address []byte `protobuf:"bytes,3,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *Distributor) Reset()         { *m = Distributor{} }
func (m *Distributor) String() string { return proto.CompactTextString(m) }
func (*Distributor) ProtoMessage()    {}
