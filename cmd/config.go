package cmd

import "time"

type Config struct {
	HTTPPort                   string
	DBHost                     string
	DBPort                     string
	DBUser                     string
	DBPassword                 string
	DBName                     string
	DBSslMode                  string
	CatalogBaseURL             string
	KafkaHost                  string
	KafkaStageEventsTopic      string
	KafkaPaymentRemindersTopic string
	PaymentReminderThreshold   time.Duration
}
