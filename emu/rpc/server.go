package rpc

import (
	"io"
	"net"
	"net/http"
	"net/rpc"
	"strconv"
)

// Device is the control surface a simulated device exposes to external
// harnesses: drive bytes through it, reset it, grab register dumps.
type Device interface {
	Reset()
	SetSelect(asserted bool)
	Transfer(in []uint8) []uint8
	RegisterDump() (string, error)
}

type devProxy struct {
	dev Device
}

func (dp *devProxy) Reset(_, _ *struct{}) error { dp.dev.Reset(); return nil }

func (dp *devProxy) SetSelect(asserted bool, _ *struct{}) error {
	dp.dev.SetSelect(asserted)
	return nil
}

func (dp *devProxy) Transfer(in []uint8, reply *[]uint8) error {
	*reply = dp.dev.Transfer(in)
	return nil
}

func (dp *devProxy) RegisterDump(_ *struct{}, reply *string) error {
	dump, err := dp.dev.RegisterDump()
	if err != nil {
		return err
	}
	*reply = dump
	return nil
}

func (dp *devProxy) IsReady(_ *struct{}, reply *bool) error {
	*reply = true
	return nil
}

type Server struct {
	io.Closer
}

func NewServer(port int, dev Device) (*Server, error) {
	proxy := &devProxy{dev: dev}
	if err := rpc.RegisterName("dsp", proxy); err != nil {
		panic("failed to register RPC server: " + err.Error())
	}
	rpc.HandleHTTP()
	l, err := net.Listen("tcp", ":"+strconv.Itoa(port))
	if err != nil {
		return nil, err
	}

	modRPC.InfoZ("rpc server listening").Int("port", port).End()
	go http.Serve(l, nil)
	return &Server{Closer: l}, nil
}
