package main

import "github.com/joho/godotenv"

func loadEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}
