// Package pb holds the Go bindings for the guardian.sync.v1 protobuf API
// defined in proto/*.proto.
//
// The bindings are maintained by hand so the build does not depend on protoc
// being installed. Messages follow the legacy message shape (struct tags plus
// Reset/String/ProtoMessage) that google.golang.org/protobuf supports through
// protoimpl, and the service descriptors mirror what protoc-gen-go-grpc
// emits. When proto/*.proto changes, change the matching Go type here.
package pb
