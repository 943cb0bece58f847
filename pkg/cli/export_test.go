package cli

var LoadConfigFile = loadConfigFile
