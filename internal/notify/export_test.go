package notify

var Marshal = marshal
