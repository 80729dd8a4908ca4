//go:build tools

// Пакет tools фиксирует, чем генерируется код из proto/.
// Генераторы ставятся вручную, версии совпадают с заголовками *.pb.go:
//
//	go install google.golang.org/protobuf/cmd/protoc-gen-go@v1.36.11
//	go install google.golang.org/grpc/cmd/protoc-gen-go-grpc@v1.5.1
//
// Перегенерация из корня репозитория:
//
//	protoc --go_out=. --go_opt=paths=source_relative \
//	       --go-grpc_out=. --go-grpc_opt=paths=source_relative \
//	       proto/cardapio/admin/v1/admin.proto
package tools
