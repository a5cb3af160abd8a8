package main

import "hotel_pricing/cmd/pricectl/cmd"

func main() {
	cmd.Execute()
}
