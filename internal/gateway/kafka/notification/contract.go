package notification

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test

type producer interface {
	Send(topic, key string, value []byte) (partition int32, offset int64, err error)
}
