package ledger

import (
	"github.com/gogo/protobuf/proto"
)

// Account holds the native balance of a single address.
type Account struct {
	Balance uint64 `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}

// Configuration declares the gas costs of the ledger operations and the
// amount of gas granted to a single call.
type Configuration struct {
	// CallGasLimit is the amount of gas a single call is granted.
	CallGasLimit uint64 `protobuf:"varint,1,opt,name=call_gas_limit,json=callGasLimit,proto3" json:"call_gas_limit,omitempty"`
	// TransferCost is charged for every transfer, regardless of the
	// receiver.
	TransferCost     uint64 `protobuf:"varint,2,opt,name=transfer_cost,json=transferCost,proto3" json:"transfer_cost,omitempty"`
	ReadCostFlat     uint64 `protobuf:"varint,3,opt,name=read_cost_flat,json=readCostFlat,proto3" json:"read_cost_flat,omitempty"`
	ReadCostPerByte  uint64 `protobuf:"varint,4,opt,name=read_cost_per_byte,json=readCostPerByte,proto3" json:"read_cost_per_byte,omitempty"`
	WriteCostFlat    uint64 `protobuf:"varint,5,opt,name=write_cost_flat,json=writeCostFlat,proto3" json:"write_cost_flat,omitempty"`
	WriteCostPerByte uint64 `protobuf:"varint,6,opt,name=write_cost_per_byte,json=writeCostPerByte,proto3" json:"write_cost_per_byte,omitempty"`
	DeleteCost       uint64 `protobuf:"varint,7,opt,name=delete_cost,json=deleteCost,proto3" json:"delete_cost,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}
